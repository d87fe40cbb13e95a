//go:build rp2040 && status_lcd

package main

import (
	"machine"
	"time"

	"fancontrol/core"

	"tinygo.org/x/drivers/hd44780i2c"
)

const (
	lcdAddress       = 0x27
	lcdRefreshPeriod = 250 * time.Millisecond
)

var (
	lcd         hd44780i2c.Device
	lcdReady    bool
	lastRefresh time.Time

	// Buffer for LCD characters (16x2)
	// Preallocated so refreshing never allocates.
	printBuf = make([]byte, 0, 40)
)

// initStatus brings up a 16x2 HD44780 on I2C0 (SDA=GP4, SCL=GP5). Without
// a display the controller keeps running and the status is skipped.
func initStatus() {
	err := machine.I2C0.Configure(machine.I2CConfig{
		SDA: machine.GP4,
		SCL: machine.GP5,
	})
	if err != nil {
		println("could not configure I2C:", err.Error())
		return
	}

	lcd = hd44780i2c.New(machine.I2C0, lcdAddress)
	lcd.Configure(hd44780i2c.Config{
		Width:  16,
		Height: 2,
	})
	lcd.ClearDisplay()
	lcdReady = true
}

// refreshStatus shows the last sample and duty, at most every lcdRefreshPeriod.
func refreshStatus() {
	if !lcdReady || time.Since(lastRefresh) < lcdRefreshPeriod {
		return
	}
	lastRefresh = time.Now()

	ev, ok := core.LastSample()
	if !ok {
		return
	}

	printBuf = printBuf[:0]
	printBuf = append(printBuf, "Fan "...)
	printBuf = core.AppendDutyPercent(printBuf, ev.Duty, core.PeriodTop)
	printBuf = append(printBuf, "    \nADC "...)
	printBuf = core.AppendSampleValue(printBuf, ev.Raw)
	printBuf = append(printBuf, "    "...)

	lcd.SetCursor(0, 0)
	lcd.Print(printBuf)
}
