// Package config provides configuration parsing for the minireact server.
//
// The configuration is stored in minireact.json (or minireact.yaml) in the
// directory being served. Every field is optional; missing values fall back
// to the defaults below.
//
// # Configuration File Structure
//
//	{
//	  "port": 5000,
//	  "host": "localhost",
//	  "root": ".",
//	  "entry": "index.html",
//	  "logLevel": "info",
//	  "static": {
//	    "cacheControl": "no-cache"
//	  },
//	  "dev": {
//	    "liveReload": true,
//	    "ignore": [".git", "node_modules"],
//	    "debounce": "100ms"
//	  },
//	  "demo": {
//	    "delay": "3s"
//	  },
//	  "metrics": {
//	    "enabled": true,
//	    "path": "/metrics"
//	  },
//	  "tracing": {
//	    "enabled": false
//	  }
//	}
//
// The YAML form uses the same keys.
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Address:", cfg.Address())
package config
