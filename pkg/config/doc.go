// Package config loads breadboard export settings from TOML.
//
// A configuration file has three tables, all optional:
//
//	[prefab]
//	name = "AimAssist"
//	game_version = "3.8.0.4"
//	creator_name = "DeltaForce"
//
//	[layout]
//	spacing = 200.0
//
//	[output]
//	sink = "redis"
//	redis_addr = "localhost:6379"
//	redis_ttl = "24h"
//
// Missing keys keep the values from [Default]. Unknown keys are rejected so
// that typos do not silently fall back to defaults.
package config
