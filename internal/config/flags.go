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
//	-d database DSN
//	-c/-config json file path with configs
//	-master-key credential encryption master key
//	-vault-org-id vault organization scope
//	-vault-url secrets manager base URL
//	-partner-url aggregation partner base URL
//	-scrape-budget wall-clock limit for one scrape (e.g., "20s")
//	-browser-path browser executable path
//	-sync-interval background sync sweep interval (e.g., "1h")
//	-request-timeout request timeout (e.g., "30s", "1m")
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var masterKey string
	var vaultOrgID string
	var vaultURL string
	var partnerURL string
	var scrapeBudget time.Duration
	var browserPath string
	var syncInterval time.Duration
	var requestTimeout time.Duration

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&masterKey, "master-key", "", "Credential encryption master key")
	flag.StringVar(&vaultOrgID, "vault-org-id", "", "Vault organization scope")
	flag.StringVar(&vaultURL, "vault-url", "", "Secrets manager base URL")
	flag.StringVar(&partnerURL, "partner-url", "", "Aggregation partner base URL")
	flag.DurationVar(&scrapeBudget, "scrape-budget", 0, "Scrape wall-clock budget (e.g., 20s)")
	flag.StringVar(&browserPath, "browser-path", "", "Browser executable path")
	flag.DurationVar(&syncInterval, "sync-interval", 0, "Background sync interval (e.g., 1h)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			MasterKey:  masterKey,
			VaultOrgID: vaultOrgID,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Vault: Vault{
			BaseURL: vaultURL,
		},
		Partner: Partner{
			BaseURL: partnerURL,
		},
		Scraper: Scraper{
			Budget:   scrapeBudget,
			ExecPath: browserPath,
		},
		Workers: Workers{
			SyncInterval: syncInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
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
