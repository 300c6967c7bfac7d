package main

import (
	logo "logo-studio"
)

func main() {
	logo.RunApplication()
}
