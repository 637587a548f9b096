package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/uber-go/tally"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"

	"github.com/foodsharenow/foodshare-api/api"
	"github.com/foodsharenow/foodshare-api/background"
	"github.com/foodsharenow/foodshare-api/store"
	"github.com/foodsharenow/foodshare-api/utils"
)

var (
	server *api.Server
	bg     *background.Background
)

func initLog() {
	logLevel, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(logLevel)
	}

	log.SetOutput(os.Stdout)

	log.SetFormatter(&prefixed.TextFormatter{
		ForceFormatting: true,
		FullTimestamp:   true,
	})
}

func loadConfig(file string) {
	// Variables of a local .env file become env config
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file.")
	}

	// Config from file
	viper.SetConfigType("yaml")
	if file != "" {
		viper.SetConfigFile(file)
	}

	viper.AddConfigPath("/.config/")
	viper.AddConfigPath(".")
	err := viper.ReadInConfig()
	if err != nil {
		fmt.Println("No config file. Read config from env.")
		viper.AllowEmptyEnv(false)
	}

	viper.SetDefault("server.port", "8080")
	viper.SetDefault("i18n.dir", "./i18n")
	viper.SetDefault("analysis.delay", time.Second)
	viper.SetDefault("metrics.prefix", "foodshare")

	// Config from env if possible
	viper.AutomaticEnv()
	viper.SetEnvPrefix("foodshare")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func loadSeed() (store.Seed, error) {
	file := viper.GetString("seed.file")
	if file == "" {
		return store.DefaultSeed(), nil
	}
	return store.LoadSeedFile(file)
}

func main() {
	var configFile string

	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Info("Server is preparing to shutdown")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if server != nil {
			log.Info("Shutdown api server")
			if err := server.Shutdown(ctx); err != nil {
				log.Error("Server Shutdown:", err)
			}
		}

		if bg != nil {
			log.Info("Stopping background timers")
			bg.Stop()
		}

		sentry.Flush(2 * time.Second)
		os.Exit(1)
	}()

	flag.StringVar(&configFile, "c", "./config.yaml", "[optional] path of configuration file")
	flag.Parse()

	loadConfig(configFile)

	initLog()

	// Sentry
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              viper.GetString("sentry.dsn"),
		AttachStacktrace: true,
		Environment:      viper.GetString("sentry.environment"),
		Dist:             viper.GetString("sentry.dist"),
	}); err != nil {
		log.Error(err)
	}
	log.WithField("prefix", "init").Info("Initialized sentry")

	utils.InitI18NBundle()
	log.WithField("prefix", "init").Info("Loaded i18n bundles")

	seed, err := loadSeed()
	if err != nil {
		log.Panic(err)
	}

	foodShareStore, err := store.NewFoodShareStore(seed)
	if err != nil {
		log.Panic(err)
	}
	log.WithField("prefix", "init").Infof("Loaded %d listings", len(seed.Listings))

	scope, closer := tally.NewRootScope(tally.ScopeOptions{
		Prefix:   viper.GetString("metrics.prefix"),
		Reporter: tally.NullStatsReporter,
	}, time.Second)
	defer closer.Close()

	bg = background.New(viper.GetDuration("analysis.delay"), scope)

	// Init http server
	server = api.NewServer(foodShareStore, bg, scope)
	log.WithField("prefix", "init").Info("Initialized http server")

	log.Fatal(server.Run(":" + viper.GetString("server.port")))
}
