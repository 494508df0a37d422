package main

import "capstone-panel-system/cmd/server"

func main() {
	server.Init()
	server.Run()
}
