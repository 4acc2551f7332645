// Copyright: This file is part of loglens, released under https://github.com/loglens/loglens/blob/main/LICENSE

package main

import (
	"net/http"

	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/loglens/loglens/internal/pkg/logging"
	"github.com/loglens/loglens/internal/pkg/must"
	"github.com/loglens/loglens/pkg/build"
	"github.com/loglens/loglens/pkg/rest"
	"github.com/spf13/cobra"
)

var webCmd = &cobra.Command{
	Use:   "web [flags]",
	Short: "Start the REST server.",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, args []string) {
		defer StartProfile().Stop()
		cfg := newConfig()
		addr := *httpFlag
		if addr == "" {
			addr = cfg.Listen
		}

		gin.DefaultWriter = logging.LogWriter()
		gin.SetMode(gin.ReleaseMode)
		gin.DisableConsoleColor()
		router := gin.New()
		router.Use(gin.Recovery())
		r := must.Must1(rest.New(newClient(cfg), router))
		defer r.Close()
		pprof.Register(router) // Enable profiling

		s := http.Server{Addr: addr, Handler: router}
		log.Info("listening for http", "addr", s.Addr, "endpoint", cfg.Endpoint, "version", build.Version)
		must.Must(s.ListenAndServe())
	},
}

var httpFlag *string

func init() {
	rootCmd.AddCommand(webCmd)
	httpFlag = webCmd.Flags().String("http", "", "host:port address for the http listener")
}
