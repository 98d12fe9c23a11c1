// Command twoopt reads TSPLIB coordinate instances, builds a nearest-neighbor
// tour and improves it to a 2-opt local optimum.
//
//	twoopt solve berlin52.tsp att48.tsp --verify --format yaml
//	twoopt info berlin52.tsp
package main

import (
	"os"

	"github.com/spf13/viper"
)

func main() {
	if err := newRootCmd(viper.New()).Execute(); err != nil {
		os.Exit(1)
	}
}
