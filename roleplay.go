package main

import (
	"flag"
	"fmt"

	"github.com/warmtalk/backend/internal/config"
	"github.com/warmtalk/backend/internal/handler"
	"github.com/warmtalk/backend/internal/svc"

	"github.com/joho/godotenv"
	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest"
)

var configFile = flag.String("f", "etc/roleplay-api.yaml", "the config file")

func main() {
	flag.Parse()

	// .env 可选，密钥走环境变量时用得上
	if err := godotenv.Load(); err != nil {
		logx.Infof("no .env file loaded: %v", err)
	}

	var c config.Config
	conf.MustLoad(*configFile, &c)

	server := rest.MustNewServer(c.RestConf, rest.WithCors("*"))
	defer server.Stop()

	ctx := svc.NewServiceContext(c)
	handler.RegisterHandlers(server, ctx)

	fmt.Printf("Starting server at %s:%d...\n", c.Host, c.Port)
	server.Start()
}
