// Command metroctl drives a metro backend session from the terminal.
//
// It keeps the bearer token in a file between invocations, so a login
// followed by profile or topology commands behaves like one browser
// session:
//
//	metroctl -config metroctl.yaml login alice secret
//	metroctl -config metroctl.yaml profile
//	metroctl -config metroctl.yaml lines
//	metroctl -config metroctl.yaml logout
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"gopkg.in/yaml.v3"

	metro "github.com/Scoheart-Order/metro"
	"github.com/Scoheart-Order/metro/api"
	"github.com/Scoheart-Order/metro/stores"
	"github.com/Scoheart-Order/metro/tokenstore"
)

type fileConfig struct {
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	UserAgent      string `yaml:"user_agent"`

	// TokenStore picks where the session token lives between runs:
	// "file" (default) or "redis".
	TokenStore string `yaml:"token_store"`
	TokenFile  string `yaml:"token_file"`
	RedisAddr  string `yaml:"redis_addr"`
	RedisKey   string `yaml:"redis_key"`

	AuditLog string `yaml:"audit_log"`
}

func main() {
	var (
		configPath = flag.String("config", "", "path to a YAML config file")
		baseURL    = flag.String("base-url", "", "backend base URL; overrides the config file")
		tokenFile  = flag.String("token-file", "", "session token file; overrides the config file")
	)
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() == 0 {
		usage()
		os.Exit(2)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fatal(err)
	}
	if *baseURL != "" {
		cfg.BaseURL = *baseURL
	}
	if *tokenFile != "" {
		cfg.TokenFile = *tokenFile
	}
	if cfg.BaseURL == "" {
		fatal(errors.New("no backend base URL; set base_url in the config or pass -base-url"))
	}

	tokens, cleanup, err := buildTokenStore(cfg)
	if err != nil {
		fatal(err)
	}
	defer cleanup()

	engineCfg := metro.DefaultConfig()
	engineCfg.API.BaseURL = cfg.BaseURL
	if cfg.TimeoutSeconds > 0 {
		engineCfg.API.Timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}
	if cfg.UserAgent != "" {
		engineCfg.API.UserAgent = cfg.UserAgent
	}

	builder := metro.New().WithConfig(engineCfg).WithTokenStore(tokens)
	if cfg.AuditLog != "" {
		f, err := os.OpenFile(cfg.AuditLog, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fatal(fmt.Errorf("open audit log: %w", err))
		}
		defer f.Close()
		builder = builder.WithAuditSink(metro.NewJSONWriterSink(f))
	}

	client := api.NewClient(api.ClientConfig{
		BaseURL:     cfg.BaseURL,
		Timeout:     engineCfg.API.Timeout,
		UserAgent:   engineCfg.API.UserAgent,
		TokenSource: tokens.Get,
	})

	engine, err := builder.WithAPIClient(client).Build()
	if err != nil {
		fatal(err)
	}
	defer engine.Close()

	ctx := context.Background()
	warnIfExpired(ctx, tokens)
	if err := run(ctx, engine, client, flag.Args()); err != nil {
		fatal(err)
	}
}

// warnIfExpired peeks at the stored token's exp claim. Advisory only;
// the command still runs and the backend has the final say.
func warnIfExpired(ctx context.Context, tokens tokenstore.Store) {
	token, err := tokens.Get(ctx)
	if err != nil || token == "" {
		return
	}
	if exp, ok := tokenstore.ExpiresAt(token); ok && time.Now().After(exp) {
		fmt.Fprintf(os.Stderr, "metroctl: stored token expired %s; log in again if requests fail\n",
			exp.Format(time.RFC3339))
	}
}

func run(ctx context.Context, engine *metro.Engine, client *api.Client, args []string) error {
	cmd, rest := args[0], args[1:]
	switch cmd {
	case "login":
		if len(rest) != 2 {
			return errors.New("usage: login <username> <password>")
		}
		if err := engine.Login(ctx, rest[0], rest[1]); err != nil {
			return err
		}
		fmt.Println("logged in")
		return nil

	case "login-phone":
		if len(rest) != 2 {
			return errors.New("usage: login-phone <phone> <password>")
		}
		if err := engine.LoginByPhone(ctx, rest[0], rest[1]); err != nil {
			return err
		}
		fmt.Println("logged in")
		return nil

	case "logout":
		if err := engine.Logout(ctx); err != nil {
			return err
		}
		fmt.Println("logged out")
		return nil

	case "profile":
		if err := engine.FetchProfile(ctx); err != nil {
			return err
		}
		return printJSON(engine.CurrentUser())

	case "home":
		if engine.IsAuthenticated(ctx) {
			if err := engine.FetchProfile(ctx); err != nil {
				return err
			}
		}
		fmt.Println(engine.HomeRoute())
		return nil

	case "recharge":
		if len(rest) != 1 {
			return errors.New("usage: recharge <amount>")
		}
		amount, err := strconv.ParseFloat(rest[0], 64)
		if err != nil {
			return fmt.Errorf("bad amount %q: %w", rest[0], err)
		}
		if err := engine.Recharge(ctx, amount); err != nil {
			return err
		}
		fmt.Printf("balance: %.2f\n", engine.Balance())
		return nil

	case "lines":
		topo := stores.NewTopology(client.Metro)
		if err := topo.Refresh(ctx); err != nil {
			return err
		}
		return printJSON(topo.Lines())

	case "stations":
		topo := stores.NewTopology(client.Metro)
		if err := topo.Refresh(ctx); err != nil {
			return err
		}
		return printJSON(topo.Stations())

	case "trips":
		if len(rest) != 1 {
			return errors.New("usage: trips <route-id>")
		}
		routeID, err := strconv.ParseInt(rest[0], 10, 64)
		if err != nil {
			return fmt.Errorf("bad route id %q: %w", rest[0], err)
		}
		trips := stores.NewTrainTrips(client.Metro)
		if err := trips.Refresh(ctx); err != nil {
			return err
		}
		return printJSON(trips.ByRoute(routeID))

	case "announcements":
		anns := stores.NewAnnouncements(client.Announcements)
		if err := anns.Refresh(ctx); err != nil {
			return err
		}
		return printJSON(anns.All())

	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func loadConfig(path string) (fileConfig, error) {
	cfg := fileConfig{
		TokenStore: "file",
		TokenFile:  defaultTokenFile(),
	}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if cfg.TokenStore == "" {
		cfg.TokenStore = "file"
	}
	if cfg.TokenFile == "" {
		cfg.TokenFile = defaultTokenFile()
	}
	return cfg, nil
}

func buildTokenStore(cfg fileConfig) (tokenstore.Store, func(), error) {
	switch cfg.TokenStore {
	case "file":
		return tokenstore.NewFile(cfg.TokenFile), func() {}, nil
	case "redis":
		if cfg.RedisAddr == "" {
			return nil, nil, errors.New("token_store redis needs redis_addr")
		}
		client := redis.NewUniversalClient(&redis.UniversalOptions{
			Addrs: []string{cfg.RedisAddr},
		})
		store := tokenstore.NewRedis(client, cfg.RedisKey, 0)
		return store, func() { _ = client.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown token_store %q", cfg.TokenStore)
	}
}

func defaultTokenFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".metroctl-token"
	}
	return filepath.Join(home, ".metroctl-token")
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func usage() {
	fmt.Fprintf(os.Stderr, `usage: metroctl [flags] <command> [args]

commands:
  login <username> <password>   exchange credentials for a session token
  login-phone <phone> <password>
  logout                        end the session (local always, remote best-effort)
  profile                       fetch and print the account profile
  home                          print the landing path for the session
  recharge <amount>             top up the balance
  lines                         list metro lines
  stations                      list metro stations
  trips <route-id>              list train trips on a route
  announcements                 list system announcements

flags:
`)
	flag.PrintDefaults()
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "metroctl:", err)
	os.Exit(1)
}
