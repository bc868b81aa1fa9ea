package config

import (
	_ "embed"
	"fmt"
	"net/url"
	"os"

	"e-learning-server/biz/infrastructure/util/log"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/service"
)

//go:embed default.yaml
var embeddedConfig []byte

type Config struct {
	service.ServiceConf
	Host    string `json:",default=0.0.0.0"`
	Port    int    `json:",default=8000,env=PORT"`
	Mongo   Mongo
	Stripe  Stripe
	Monitor Monitor   `json:",optional"`
	Log     LogConfig `json:",optional"`
}

type Mongo struct {
	User    string `json:",optional,env=DB_USER"`
	Pass    string `json:",optional,env=DB_PASS"`
	Cluster string `json:",default=cluster0.qlvqjvw.mongodb.net"`
	AppName string `json:",default=Cluster0"`
	// URL takes precedence over the credential fields when set.
	URL string `json:",optional"`
	DB  string `json:",default=yoga-master"`
}

type Stripe struct {
	SecretKey string `json:",optional,env=PAYMENT_SECRET_KEY"`
	Currency  string `json:",default=usd"`
}

// Monitor exposes hertz request metrics; an empty Addr disables it.
type Monitor struct {
	Addr string `json:",optional"`
	Path string `json:",default=/metrics"`
}

type LogConfig struct {
	NoLogPaths []string `json:",optional"`
}

func NewConfig() (*Config, error) {
	c := new(Config)

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		log.Info("NewConfig load config from path: %s", path)
		err := conf.Load(path, c)
		if err != nil {
			return nil, err
		}
	} else {
		err := conf.LoadFromYamlBytes(embeddedConfig, c)
		if err != nil {
			return nil, err
		}
	}

	err := c.SetUp()
	if err != nil {
		return nil, err
	}
	return c, nil
}

// ListenOn is the host:port the HTTP server binds.
func (c *Config) ListenOn() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// URI returns the connection string for the document store.
func (m Mongo) URI() string {
	if m.URL != "" {
		return m.URL
	}
	return fmt.Sprintf("mongodb+srv://%s:%s@%s/?retryWrites=true&w=majority&appName=%s",
		url.QueryEscape(m.User), url.QueryEscape(m.Pass), m.Cluster, m.AppName)
}
