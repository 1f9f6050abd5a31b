package server

import (
	"github.com/philly/arch-blog/postpage/internal/adapters/html"
	"github.com/philly/arch-blog/postpage/internal/adapters/rest"
	"github.com/philly/arch-blog/postpage/internal/platform/logger"
	"github.com/philly/arch-blog/postpage/internal/site"
)

// provideLoggerConfig creates logger config from server config
func provideLoggerConfig(config Config) logger.Config {
	return logger.Config{
		Environment: config.Environment,
		LogLevel:    config.LogLevel,
	}
}

// provideVersion provides the application version
func provideVersion() rest.Version {
	return "1.0.0"
}

func provideSiteTitle(config Config) html.SiteTitle {
	return html.SiteTitle(config.SiteTitle)
}

func providePermalinkPrefix(config Config) html.PermalinkPrefix {
	return html.PermalinkPrefix(config.PostURLPrefix)
}

func provideSiteConfig(config Config) site.Config {
	return site.Config{
		OutputDir:   config.OutputDir,
		Precompress: config.BuildPrecompress,
	}
}
