// Command cdtrack tracks ability cooldowns of a roster of units.
package main

import "github.com/sarchlab/cdtrack/cdtrack/cmd"

func main() {
	cmd.Execute()
}
