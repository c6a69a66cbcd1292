package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-b/-base collection base directory
//	-create create a new collection file if none exists
//	-api-key API key required on inbound requests
//	-c/-config json file path with configs
//	-sync-user sync service account name
//	-sync-key sync service authorization key
//	-sync-endpoint sync service base URL
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-debounce-delay quiet period before an after-edit auto-sync
//	-periodic-interval interval of the unconditional background sync
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var baseDir string
	var createCollection bool
	var apiKey string
	var jsonConfigPath string
	var syncUser string
	var syncKey string
	var syncEndpoint string
	var requestTimeout time.Duration
	var debounceDelay time.Duration
	var periodicInterval time.Duration

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&baseDir, "b", "", "Collection base directory")
	flag.StringVar(&baseDir, "base", "", "Collection base directory (alias)")
	flag.BoolVar(&createCollection, "create", false, "Create a new collection if not present")
	flag.StringVar(&apiKey, "api-key", "", "API key required on inbound requests")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&syncUser, "sync-user", "", "Sync service account name")
	flag.StringVar(&syncKey, "sync-key", "", "Sync service authorization key")
	flag.StringVar(&syncEndpoint, "sync-endpoint", "", "Sync service base URL")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&debounceDelay, "debounce-delay", 0, "Quiet period before after-edit auto-sync")
	flag.DurationVar(&periodicInterval, "periodic-interval", 0, "Interval of the periodic background sync")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			APIKey: apiKey,
		},
		Collection: Collection{
			BaseDir: baseDir,
			Create:  createCollection,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Sync: Sync{
			User:     syncUser,
			Key:      syncKey,
			Endpoint: syncEndpoint,
		},
		Scheduler: Scheduler{
			DebounceDelay:    debounceDelay,
			PeriodicInterval: periodicInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string so mergo
// treats the address as unset.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
