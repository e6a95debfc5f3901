package main

import (
	"log"
	"os"

	"github.com/BugHunter-Coder/fasting-friend/config"
	"github.com/BugHunter-Coder/fasting-friend/routes"
	"github.com/BugHunter-Coder/fasting-friend/services"
)

func main() {
	config.InitDB()

	hub := services.NewRealtimeHub()

	push, err := services.NewPushService(config.DB)
	if err != nil {
		log.Printf("push notifications disabled: %v", err)
		push = nil
	}
	services.InitAlertDeps(config.DB, hub, push)

	timer := services.NewTimerService(config.DB, hub)
	timer.Start()

	services.NewReminderScheduler(config.DB).Start()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	r := routes.SetupRouter(hub, push, timer)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
