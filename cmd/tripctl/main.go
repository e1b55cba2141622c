// Command tripctl talks to a running TripWise server.
package main

import "github.com/pkordes/tripwise/backend/cmd/tripctl/cmd"

func main() {
	cmd.Execute()
}
