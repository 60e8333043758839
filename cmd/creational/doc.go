// Command creational lists and runs the creational pattern walkthroughs.
//
// Usage
//
//	creational list
//	creational run builder prototype
//	creational run --all
//	creational run                       # runs the demos named in config
//
// Global flags
//
//	--config <file.yaml>   optional YAML configuration
//	--log-level <level>    debug | info | warn | error (overrides config)
//
// Configuration
//
// Sources are layered (later wins): defaults, the YAML file, a .env file in the
// working directory, then the process environment (CREATIONAL_LOG_LEVEL,
// CREATIONAL_DEMOS), then flags. Example file:
//
//	log_level: debug
//	demos: [prototype]
//	prototypes:
//	  - key: EXTRA
//	    variant: 2
//	    value: 5
//	    extra: 55
//
// Entries under prototypes are registered before the prototype walkthrough.
//
// Walkthrough transcripts go to stdout; logs go to stderr and carry a per
// invocation run_id.
package main
