// Package viper carries a devtainer-local Viper instance so the
// project never touches Viper's global singleton.
package viper

import (
	"sync"

	spfviper "github.com/spf13/viper"
)

var (
	instance *spfviper.Viper
	once     sync.Once
)

// Instance returns the project's Viper instance, creating it on first
// use.
func Instance() *spfviper.Viper {
	once.Do(func() {
		instance = spfviper.New()
	})

	return instance
}
