package main

import "github.com/vibeventz/ms-go-vendor-admin/cmd"

func main() {
	cmd.Execute()
}
