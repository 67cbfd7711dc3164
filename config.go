package main

import (
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/exp/slog"
	"gopkg.in/yaml.v3"
)

//**********************************************************
// config
//**********************************************************

type Config struct {
	Build struct {
		Source SourceOptions `yaml:"source"`
	} `yaml:"build"`
	BuildGraphs bool `yaml:"build-graphs"`
	Services    struct {
		Address         string `yaml:"address"`
		MaxVisitedNodes int32  `yaml:"max-visited-nodes"`
	} `yaml:"services"`
}

type SourceOptions struct {
	OSM  string `yaml:"osm"`
	GTFS string `yaml:"gtfs"`
}

func ReadConfig(file string) Config {
	slog.Info("Reading config file")
	data, err := os.ReadFile(file)
	if err != nil {
		slog.Error("failed to read config file: " + err.Error())
		panic(err)
	}
	var config Config
	yaml.Unmarshal(data, &config)
	if config.Services.Address == "" {
		config.Services.Address = ":5002"
	}
	if config.Services.MaxVisitedNodes <= 0 {
		config.Services.MaxVisitedNodes = 1000000
	}

	// environment overrides, .env is optional
	godotenv.Load()
	if addr := os.Getenv("TRANSIT_ADDRESS"); addr != "" {
		config.Services.Address = addr
	}
	if osm := os.Getenv("TRANSIT_OSM"); osm != "" {
		config.Build.Source.OSM = osm
	}
	if gtfs := os.Getenv("TRANSIT_GTFS"); gtfs != "" {
		config.Build.Source.GTFS = gtfs
	}
	return config
}
