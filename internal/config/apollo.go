package config

import (
	"log"
	"strconv"

	agollo "github.com/apolloconfig/agollo/v4"
	apconf "github.com/apolloconfig/agollo/v4/env/config"
	"github.com/apolloconfig/agollo/v4/storage"
)

// overrideFromApollo starts Apollo client and overrides config values if present.
// Returns a closer to stop the Apollo client.
func overrideFromApollo(cfg *Config, store *Store) (func(), error) {
	if cfg.Apollo.Addrs == "" || cfg.Apollo.AppID == "" {
		log.Println("apollo: missing APOLLO_ADDRS or APOLLO_APP_ID; skip")
		return nil, nil
	}

	ns := cfg.Apollo.Namespace
	if ns == "" {
		ns = "application"
	}

	appCfg := &apconf.AppConfig{
		AppID:              cfg.Apollo.AppID,
		Cluster:            cfg.Apollo.Cluster,
		NamespaceName:      ns,
		IP:                 cfg.Apollo.Addrs,
		Secret:             cfg.Apollo.AccessKey,
	}

	client, err := agollo.StartWithConfig(func() (*apconf.AppConfig, error) { return appCfg, nil })
	if err != nil {
		return nil, err
	}

	// Initial override
	applyApolloOverrides(client, ns, cfg)
	_ = store.UpdateValidated(cfg, map[string]bool{"apollo.init": true})

	// Listen changes: update store with changed keys
	client.AddChangeListener(&changeLogger{ns: ns, client: client, store: store})

	closer := func() {
		// agollo v4 exposes no Stop API
	}
	return closer, nil
}

func applyApolloOverrides(client agollo.Client, namespace string, cfg *Config) {
	cache := client.GetConfigCache(namespace)
	if cache == nil {
		return
	}
	setStr := func(key string, dst *string, allowEmpty bool) {
		if v, err := cache.Get(key); err == nil {
			if s, _ := v.(string); allowEmpty || s != "" {
				*dst = s
			}
		}
	}
	setInt := func(key string, dst *int) {
		if v, err := cache.Get(key); err == nil {
			if s, _ := v.(string); s != "" {
				if n, err := strconv.Atoi(s); err == nil {
					*dst = n
				}
			}
		}
	}

	setStr("app.env", &cfg.AppEnv, false)
	setStr("server.addr", &cfg.Server.Addr, false)
	setStr("server.base_url", &cfg.Server.BaseURL, false)
	setStr("log.level", &cfg.Log.Level, false)
	setStr("log.format", &cfg.Log.Format, false)
	setStr("pg.url", &cfg.PG.URL, false)
	setInt("pg.max_open", &cfg.PG.MaxOpenConns)
	setInt("pg.max_idle", &cfg.PG.MaxIdleConns)
	// Redis
	setStr("redis.addr", &cfg.Redis.Addr, false)
	setStr("redis.password", &cfg.Redis.Password, true)
	setInt("redis.db", &cfg.Redis.DB)
	// MQ
	setStr("mq.url", &cfg.MQ.URL, false)
	// ES
	setStr("es.addrs", &cfg.ES.Addrs, false)
	setStr("es.username", &cfg.ES.Username, true)
	setStr("es.password", &cfg.ES.Password, true)
	// JWT
	setStr("jwt.algo", &cfg.JWT.Algo, false)
	setStr("jwt.hs_secret", &cfg.JWT.HSSecret, false)
	setStr("jwt.issuer", &cfg.JWT.Issuer, false)
	setStr("jwt.audience", &cfg.JWT.Audience, false)
	setInt("jwt.access_min", &cfg.JWT.AccessMin)
	setInt("jwt.refresh_days", &cfg.JWT.RefreshDays)
	// Media
	setStr("media.dir", &cfg.Media.Dir, false)
	setStr("media.s3_bucket", &cfg.Media.S3Bucket, true)
	setStr("media.s3_endpoint", &cfg.Media.S3Endpoint, true)
	setStr("media.public_prefix", &cfg.Media.PublicPrefix, false)
	// Rate limit
	setInt("ratelimit.window_sec", &cfg.RateLimit.WindowSec)
	setInt("ratelimit.max", &cfg.RateLimit.Max)
}

type changeLogger struct {
	ns     string
	client agollo.Client
	store  *Store
}

func (c *changeLogger) OnChange(e *storage.ChangeEvent) {
	log.Printf("apollo change: namespace=%s, changes=%d", e.Namespace, len(e.Changes))
	// Build new config based on current and apply overrides
	cur := c.store.Get()
	next := cloneConfig(cur)
	applyApolloOverrides(c.client, c.ns, next)
	changed := map[string]bool{}
	for k := range e.Changes {
		changed[k] = true
	}
	_ = c.store.UpdateValidated(next, changed)
}
func (c *changeLogger) OnNewestChange(e *storage.FullChangeEvent) {
	log.Printf("apollo newest change: namespace=%s, changes=%d", e.Namespace, len(e.Changes))
}
