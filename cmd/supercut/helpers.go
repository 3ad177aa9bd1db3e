package main

import "time"

// timeRounding keeps printed durations readable.
const timeRounding = 100 * time.Millisecond
