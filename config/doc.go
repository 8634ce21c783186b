// Package config loads device and run settings from a TOML or YAML file.
//
//	# fpgareg.toml
//	port          = "/dev/ttyUSB1"
//	baud          = 115200
//	rotation_mode = "11"
//	samples       = 50
//	open_settle   = "1s"
//	write_settle  = "500ms"
//	read_timeout  = "5s"
//
// Keys that are absent keep the values from Default.
package config
