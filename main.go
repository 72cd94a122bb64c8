package main

import "github.com/yuchingtw/trip-companion/cmd"

func main() {
	cmd.Execute()
}
