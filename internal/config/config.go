package config

import (
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	log "github.com/sirupsen/logrus"
)

const DefaultPath = "./config/planner.yaml"

type Application struct {
	// Year is the planner year; 0 means the current year.
	Year        int          `koanf:"year"`
	Theme       string       `koanf:"theme"`
	OutputDir   string       `koanf:"outputdir"`
	Document    Document     `koanf:"document"`
	Pages       Pages        `koanf:"pages"`
	Collections []Collection `koanf:"collections"`
	Highlights  []Highlight  `koanf:"highlights"`
	Server      Server       `koanf:"server"`
}

type Document struct {
	Title    string `koanf:"title"`
	Author   string `koanf:"author"`
	Compress bool   `koanf:"compress"`
	// CreationDate in YYYY-MM-DD form; empty pins it to January 1 of the year.
	CreationDate string `koanf:"creationdate"`
}

type Pages struct {
	IndexPages     int  `koanf:"indexpages"`
	FutureLogPages int  `koanf:"futurelogpages"`
	Reviews        bool `koanf:"reviews"`
	Quarterly      bool `koanf:"quarterly"`
}

type Collection struct {
	Id    string `koanf:"id"`
	Title string `koanf:"title"`
}

type Highlight struct {
	Title string `koanf:"title"`
	Start string `koanf:"start"`
	End   string `koanf:"end"`
}

type Server struct {
	Addr string `koanf:"addr"`
}

func defaults() Application {
	return Application{
		Theme:     "light",
		OutputDir: ".",
		Document: Document{
			Author:   "",
			Compress: true,
		},
		Pages: Pages{
			IndexPages:     2,
			FutureLogPages: 2,
			Reviews:        true,
			Quarterly:      true,
		},
		Server: Server{
			Addr: ":8181",
		},
	}
}

func Load(path string) (Application, error) {
	var k = koanf.New(".")

	err := k.Load(structs.Provider(defaults(), "koanf"), nil)
	if err != nil {
		log.Errorf("error loading config from structs: %v", err)
		return Application{}, err
	}

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		if os.IsNotExist(err) {
			log.Infof("Config file not found at %s, using defaults and environment variables", path)
		} else {
			log.Errorf("error loading config from YAML: %v", err)
			return Application{}, err
		}
	} else {
		log.Infof("Loaded configuration from file: %s", path)
	}

	err = k.Load(env.Provider(".", env.Opt{
		Prefix: "PLANNER_",
		TransformFunc: func(k, v string) (string, any) {
			k = strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(k, "PLANNER_")), "_", ".")
			return k, v
		},
	}), nil)
	if err != nil {
		log.Errorf("error loading config from envs: %v", err)
		return Application{}, err
	}

	var app Application
	if err := k.Unmarshal("", &app); err != nil {
		return Application{}, err
	}

	return app, nil
}

// CreationTime parses Document.CreationDate. It returns the zero time when the
// date is not set.
func (d Document) CreationTime() (time.Time, error) {
	if strings.TrimSpace(d.CreationDate) == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.DateOnly, strings.TrimSpace(d.CreationDate))
}
