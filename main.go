package main

// main is a tiny entrypoint that delegates configuration and server startup
// to Run() in server.go.
func main() {
	Run()
}
