// Command pretty prints JSON and YAML documents in structural syntax.
//
//	echo '{"a":[1,2]}' | pretty
//	Object (fromList [("a", Array [Int 1,Int 2])])
package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}
