package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/folio-panel/folio/config"
	"github.com/folio-panel/folio/database"
	"github.com/folio-panel/folio/logger"
	"github.com/folio-panel/folio/util/json_util"
	"github.com/folio-panel/folio/util/random"
	"github.com/folio-panel/folio/web"
	"github.com/folio-panel/folio/web/service"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func loadWebConfig() (*config.WebConfig, error) {
	cfg, err := config.GetWebConfig()
	if err != nil {
		return nil, err
	}
	if cfg.Secret == "" {
		cfg.Secret = random.Seq(32)
		logger.Warning("FOLIO_SECRET is not set, sessions will not survive a restart")
	}
	return cfg, cfg.Validate()
}

func runWebServer() {
	log.Printf("%v %v", config.GetName(), config.GetVersion())

	level, err := logger.ParseLevel(config.GetLogLevel())
	if err != nil {
		log.Fatal(err)
	}
	logger.InitLogger(level)
	defer logger.CloseLogger()

	cfg, err := loadWebConfig()
	if err != nil {
		log.Fatal("invalid web config: ", err)
	}

	db, err := database.InitDB(config.GetDBPath())
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		if err := database.CloseDB(db); err != nil {
			logger.Warning("close database:", err)
		}
	}()

	server := web.NewServer(db, cfg)
	if err := server.Start(); err != nil {
		log.Println(err)
		return
	}

	sigCh := make(chan os.Signal, 1)
	// Trap shutdown signals
	signal.Notify(sigCh, syscall.SIGHUP, syscall.SIGTERM, os.Interrupt)
	for {
		sig := <-sigCh

		switch sig {
		case syscall.SIGHUP:
			logger.Info("Received SIGHUP signal. Restarting server...")
			if err := server.Stop(); err != nil {
				logger.Warning("stop server err:", err)
			}
			server = web.NewServer(db, cfg)
			if err := server.Start(); err != nil {
				log.Println(err)
				return
			}
		default:
			logger.Info("Shutting down server...")
			if err := server.Stop(); err != nil {
				logger.Warning("stop server err:", err)
			}
			return
		}
	}
}

func openDB() *gorm.DB {
	db, err := database.InitDB(config.GetDBPath())
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	return db
}

func showSetting(db *gorm.DB) {
	cfg, err := config.GetWebConfig()
	if err != nil {
		fmt.Println("get web config failed:", err)
		return
	}
	user, err := service.NewUserService(db).GetFirstUser()
	if err != nil {
		fmt.Println("get current user info failed, error info:", err)
		return
	}
	fmt.Println("current settings as follows:")
	fmt.Println("username:", user.Username)
	fmt.Println("listen:", cfg.Listen)
	fmt.Println("port:", cfg.Port)
	fmt.Println("database:", config.GetDBPath())
	fmt.Println("uploads:", cfg.UploadFolder)
}

func updateSetting(db *gorm.DB, username string, password string) error {
	return service.NewUserService(db).UpdateFirstUser(username, password)
}

func exportContent(db *gorm.DB, w io.Writer) error {
	home, err := service.NewContentService(db).GetHome()
	if err != nil {
		return err
	}
	return json_util.WriteIndented(w, home)
}

func main() {
	if err := config.LoadEnv(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	var rootCmd = &cobra.Command{
		Use:   config.GetName(),
		Short: "Portfolio site with an authenticated admin panel",
	}

	var runCmd = &cobra.Command{
		Use:   "run",
		Short: "Run the web server",
		Run: func(cmd *cobra.Command, args []string) {
			runWebServer()
		},
	}

	var settingCmd = &cobra.Command{
		Use:   "setting",
		Short: "Show or update the administrator account",
		Run: func(cmd *cobra.Command, args []string) {
			show, _ := cmd.Flags().GetBool("show")
			username, _ := cmd.Flags().GetString("username")
			password, _ := cmd.Flags().GetString("password")

			db := openDB()
			defer database.CloseDB(db)

			if username != "" || password != "" {
				if err := updateSetting(db, username, password); err != nil {
					fmt.Println("set username and password failed:", err)
				} else {
					fmt.Println("set username and password success")
				}
			}
			if show {
				showSetting(db)
			}
		},
	}

	settingCmd.Flags().Bool("show", false, "show current settings")
	settingCmd.Flags().String("username", "", "set login username")
	settingCmd.Flags().String("password", "", "set login password")

	var exportCmd = &cobra.Command{
		Use:   "export",
		Short: "Print all portfolio content as JSON",
		Run: func(cmd *cobra.Command, args []string) {
			db := openDB()
			defer database.CloseDB(db)
			if err := exportContent(db, cmd.OutOrStdout()); err != nil {
				fmt.Println("export failed:", err)
			}
		},
	}

	var versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(config.GetVersion())
		},
	}

	rootCmd.AddCommand(runCmd, settingCmd, exportCmd, versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
