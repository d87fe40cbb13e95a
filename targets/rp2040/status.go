//go:build rp2040 && !status_lcd

package main

func initStatus() {}

func refreshStatus() {}
