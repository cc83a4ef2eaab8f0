// Package config loads the declarative site list the container is
// provisioned from.
//
// The configuration is a single YAML document, by default at
// /etc/wp-docker-config.yml, with two required top-level sections:
//
//	sites:
//	  example.com:
//	    database_name: example
//	    database_user_name: example
//	    database_password: secret
//	    alias:
//	      - www.example.com
//	  default:
//	database:
//	  root_password_random: true
//
// Every key under sites is a domain; its value is an optional mapping of
// site options and may be null, in which case every option falls back to
// a derived default. The literal domain "default" marks the catch-all
// virtual host.
//
// Site order is significant: generated SQL and vhost files follow the
// order in which sites appear in the document, so decoding preserves it
// rather than going through a Go map.
//
// The database section configures the engine's root credential: either a
// fixed root_password or root_password_random: true. A document that
// resolves to neither is rejected.
//
// The document is loaded once at startup and is read-only afterwards.
package config
