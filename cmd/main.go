package main

import (
	"github.com/SintosDev514/Chronic-Care-Wellness-Tracker/config"
	"github.com/SintosDev514/Chronic-Care-Wellness-Tracker/routes"
	"github.com/SintosDev514/Chronic-Care-Wellness-Tracker/utils"
)

func main() {
	config.InitDB()
	utils.InitSES()
	r := routes.SetupRouter()
	r.Run(":8080")
}
