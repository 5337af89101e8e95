package config

import (
	"errors"
	"net"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// NetAddress holds structured network address data for host and port.
// It implements the pflag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// Flags is the command-line layer of the configuration. Register binds its
// fields to a flag set; after the set is parsed, Config returns the layer.
type Flags struct {
	cfg           StructuredConfig
	serverAddress NetAddress
}

// RegisterClientFlags registers the client flags on fs.
//
// Flags:
//
//	--remote-url container API base URL
//	--remote-collection container collection path ("containers", "gists")
//	--credential bearer credential
//	--request-timeout per request timeout (e.g., "30s")
//	--description container description tag
//	--storage-driver sqlite|bolt|memory
//	-d/--dsn local database path
//	--codec compress|encrypt
//	--sync-interval period of the daemon (e.g., "10m")
//	--sync-timeout bound of one sync run (e.g., "2m")
//	--log-file client log path
//	-c/--config json file path with configs
func RegisterClientFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{}

	fs.StringVar(&f.cfg.Remote.BaseURL, "remote-url", "", "Container API base URL")
	fs.StringVar(&f.cfg.Remote.Collection, "remote-collection", "", "Container collection path")
	fs.StringVar(&f.cfg.Remote.Credential, "credential", "", "Bearer credential for the container API")
	fs.DurationVar(&f.cfg.Remote.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&f.cfg.Remote.Description, "description", "", "Description tag of the sync container")
	f.registerStorage(fs)
	fs.StringVar(&f.cfg.Codec.Mode, "codec", "", "Tab payload codec: compress or encrypt")
	fs.DurationVar(&f.cfg.Workers.SyncInterval, "sync-interval", 0, "Period of automatic sync (e.g., 10m)")
	fs.DurationVar(&f.cfg.Workers.SyncTimeout, "sync-timeout", 0, "Timeout of one sync run (e.g., 2m)")
	fs.StringVar(&f.cfg.Log.File, "log-file", "", "Client log file path")
	f.registerJSON(fs)

	return f
}

// RegisterServerFlags registers the container server flags on fs.
//
// Flags:
//
//	-a/--address server address in format [host]:[port]
//	--server-credential bearer credential clients must present
//	--request-timeout request timeout (e.g., "30s", "1m")
//	--storage-driver sqlite|bolt|memory
//	-d/--dsn database path
//	-c/--config json file path with configs
func RegisterServerFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{}

	fs.VarP(&f.serverAddress, "address", "a", "Net address host:port")
	fs.StringVar(&f.cfg.Server.Credential, "server-credential", "", "Bearer credential clients must present")
	fs.DurationVar(&f.cfg.Server.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	f.registerStorage(fs)
	f.registerJSON(fs)

	return f
}

func (f *Flags) registerStorage(fs *pflag.FlagSet) {
	fs.StringVar(&f.cfg.Storage.Driver, "storage-driver", "", "Local store driver: sqlite, bolt or memory")
	fs.StringVarP(&f.cfg.Storage.DSN, "dsn", "d", "", "Database file path")
}

func (f *Flags) registerJSON(fs *pflag.FlagSet) {
	fs.StringVarP(&f.cfg.JSONFilePath, "config", "c", "", "JSON config file path")
}

// Config returns the parsed flag layer. It must be called after the flag
// set has been parsed.
func (f *Flags) Config() *StructuredConfig {
	if f == nil {
		return nil
	}

	cfg := f.cfg
	cfg.Server.Address = f.serverAddress.String()
	return &cfg
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
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
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

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

// Type implements pflag.Value.
func (a *NetAddress) Type() string {
	return "host:port"
}
