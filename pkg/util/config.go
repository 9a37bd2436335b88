package util

import (
	"fmt"

	"github.com/spf13/viper"
)

func ReadConfig() error {
	viper.SetConfigName("config")
	viper.AddConfigPath("./data/")

	viper.SetDefault("API_PORT", 6060)
	viper.SetDefault("API_TIMEOUT", "1000s")
	viper.SetDefault("OSM_FILE", "./data/map.osm.pbf")
	viper.SetDefault("LANDMARK_COUNT", 16)
	viper.SetDefault("LANDMARK_FILE", "./data/landmarks.bz2")
	viper.SetDefault("ROUTING_ALGORITHM", "astar-landmarks")

	err := viper.ReadInConfig()
	if err != nil {
		return fmt.Errorf("fatal error config file: %w", err)
	}
	return nil
}
