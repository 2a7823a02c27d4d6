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
//	-assets-dir asset store root directory
//	-url-strategy asset URL strategy: signed, direct or cdn
//	-base-url public base URL for served assets
//	-cdn-host CDN host for the cdn strategy
//	-sign-key asset URL signing key
//	-signed-url-ttl signed URL lifetime (e.g., "60m")
//	-c/-config json file path with configs
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-server-address gateway address the client connects to
//	-cache-dir client cache directory
//	-sync-interval background sync interval (e.g., "15m")
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var assetsDir string
	var urlStrategy string
	var baseURL string
	var cdnHost string
	var signKey string
	var signedURLTTL time.Duration
	var jsonConfigPath string
	var requestTimeout time.Duration
	var clientServerAddress string
	var cacheDir string
	var syncInterval time.Duration

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&assetsDir, "assets-dir", "", "Asset store root directory")
	flag.StringVar(&urlStrategy, "url-strategy", "", "Asset URL strategy: signed, direct, cdn")
	flag.StringVar(&baseURL, "base-url", "", "Public base URL for served assets")
	flag.StringVar(&cdnHost, "cdn-host", "", "CDN host for the cdn strategy")
	flag.StringVar(&signKey, "sign-key", "", "Asset URL signing key")
	flag.DurationVar(&signedURLTTL, "signed-url-ttl", 0, "Signed URL lifetime (e.g., 60m)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&clientServerAddress, "server-address", "", "Gateway address the client connects to")
	flag.StringVar(&cacheDir, "cache-dir", "", "Client cache directory")
	flag.DurationVar(&syncInterval, "sync-interval", 0, "Background sync interval (e.g., 15m)")

	flag.Parse()

	return &StructuredConfig{
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Assets: Assets{
				Dir:          assetsDir,
				URLStrategy:  urlStrategy,
				BaseURL:      baseURL,
				CDNHost:      cdnHost,
				SignKey:      signKey,
				SignedURLTTL: signedURLTTL,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Client: Client{
			ServerAddress: clientServerAddress,
			CacheDir:      cacheDir,
			SyncInterval:  syncInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string so the
// config merge treats the flag as unset.
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
