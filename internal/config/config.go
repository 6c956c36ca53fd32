package config

import (
	"log"

	"github.com/spf13/viper"
	"github.com/uckkk/arthub/internal/data"
)

const (
	DefaultPort string = "8189"
	DefaultName string = "arthub-bridge"
)

var Config *data.BridgeConfig

func InitConfig() {
	v := viper.New()
	v.SetDefault("port", DefaultPort)
	v.SetDefault("name", DefaultName)
	v.SetConfigName("arthub.cfg")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("/app/config")
	err := v.ReadInConfig()
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Konfigurationsdatei nicht gefunden, verwende Standardwerte")
		} else {
			log.Printf("Fehler beim Lesen der Konfigurationsdatei: %v", err)
		}
	}

	if err := v.Unmarshal(&Config); err != nil {
		log.Printf("Fehler beim Parsen der Konfiguration: %v", err)
		Config = &data.BridgeConfig{Port: DefaultPort, Name: DefaultName}
	}
}
