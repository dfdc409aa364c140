package main

import (
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/vendra/commerce-storefront-service/internal/system/config"
	"github.com/vendra/commerce-storefront-service/internal/system/constants"
	dbprovider "github.com/vendra/commerce-storefront-service/internal/system/database/provider"
	"github.com/vendra/commerce-storefront-service/internal/system/log"
	"github.com/vendra/commerce-storefront-service/internal/system/managers"
)

func main() {
	serviceHome := getServiceHome()
	configFile := filepath.Join(serviceHome, "config", "deployment.yaml")

	envFiles, err := filepath.Glob(filepath.Join(serviceHome, "config", "*.env"))
	if err == nil && len(envFiles) > 0 {
		_ = godotenv.Load(envFiles...)
	}

	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log.Init(cfg.Log.DebugEnabled)
	logger := log.GetLogger()

	if err := dbprovider.Init(cfg.MongoDB); err != nil {
		logger.Fatal("Failed to initialize the document store", log.Error(err))
	}
	defer dbprovider.Close()

	mux := initMultiplexer()
	handler := enableCORS(mux, cfg.Auth.CORSAllowedOrigins)

	serverAddr := fmt.Sprintf("%s:%d", cfg.Addr.Host, cfg.Addr.Port)
	ln, err := net.Listen("tcp", serverAddr)
	if err != nil {
		logger.Fatal("Failed to start listener", log.Error(err), log.String("addr", serverAddr))
	}

	logger.Info("Commerce storefront service started", log.String("addr", serverAddr))

	server := &http.Server{Handler: handler}
	if err := server.Serve(ln); err != nil {
		logger.Fatal("Failed to serve requests", log.Error(err))
	}
}

// initMultiplexer initializes the HTTP multiplexer and registers the services.
func initMultiplexer() *http.ServeMux {
	mux := http.NewServeMux()
	serviceManager := managers.NewServiceManager(mux)

	if err := serviceManager.RegisterServices(constants.ApiBasePath); err != nil {
		log.GetLogger().Fatal("Failed to register the services", log.Error(err))
	}

	return mux
}

func enableCORS(next http.Handler, allowedOrigins []string) http.Handler {
	allowAll := len(allowedOrigins) == 0

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if allowAll {
			w.Header().Set("Access-Control-Allow-Origin", "*")
		} else if originAllowed(origin, allowedOrigins) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Vary", "Origin")
		}
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")
		w.Header().Set("Access-Control-Expose-Headers", "Content-Length")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func originAllowed(origin string, allowed []string) bool {
	for _, candidate := range allowed {
		if strings.EqualFold(candidate, origin) {
			return true
		}
	}
	return false
}

func getServiceHome() string {
	homeFlag := flag.String("serviceHome", "", "Path to the service home directory")
	flag.Parse()

	if *homeFlag != "" {
		return *homeFlag
	}

	dir, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to get current working directory: %v\n", err)
		os.Exit(1)
	}
	return dir
}
