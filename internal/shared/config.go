package shared

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

const outputFileName = "aaa-four-and-five-diamond-hotels.json"

type Config struct {
	AppEnv      string
	FeedURL     string
	OutputPath  string
	HTTPTimeout time.Duration
}

func Load() Config {
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	return Config{
		AppEnv:      env("APP_ENV", "prod"),
		FeedURL:     env("FEED_URL", "https://www.aaa.com/AAA/common/diamonds/xml/4-5-diamond-hotels.xml"),
		OutputPath:  env("OUTPUT_PATH", defaultOutputPath()),
		HTTPTimeout: time.Duration(atoi("HTTP_TIMEOUT_SECONDS", 20)) * time.Second,
	}
}

// defaultOutputPath puts the JSON file next to the binary, falling back to the
// working directory when the executable path cannot be resolved.
func defaultOutputPath() string {
	exe, err := os.Executable()
	if err != nil {
		return outputFileName
	}
	return filepath.Join(filepath.Dir(exe), outputFileName)
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
