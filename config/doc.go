// Package config loads the lazyq command configuration.
//
// Values are layered with viper, lowest to highest priority: built-in
// defaults, the config file (any format viper reads), an optional .env file,
// LAZYQ_* environment variables, and finally command-line flags.
//
//	input: people.json
//	log:
//	  level: info
//	  format: console
//	query:
//	  where:    [{field: age, op: ">", value: 30}]
//	  select:   [name, age, dept]
//	  order_by: [{field: age, direction: desc}]
//	  skip: 0
//	  take: 10
//	  group_by: [dept]
package config
