// This file is part of Nexel24.
//
// Nexel24 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Nexel24 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Nexel24.  If not, see <https://www.gnu.org/licenses/>.

// Package limiter limits events to a fixed rate.
//
// A new Limiter is created with the number of events per second:
//
//	lim := limiter.NewLimiter(60)
//	defer lim.Stop()
//
// The Wait() function then stalls until the next event is due:
//
//	for {
//		if err := lim.Wait(ctx); err != nil {
//			return err
//		}
//		con.RunFrame(ctx)
//	}
//
// The limiter is only any good if the performance of the machine is well
// above the required rate.
package limiter

import (
	"context"
	"time"
)

// Limiter triggers at a fixed number of times per second.
type Limiter struct {
	rate   int
	ticker *time.Ticker
}

// NewLimiter is the preferred method of initialisation for the Limiter type.
// A rate of zero or less means the Limiter never waits.
func NewLimiter(rate int) *Limiter {
	lim := &Limiter{}
	lim.SetRate(rate)
	return lim
}

// SetRate changes the number of triggers per second.
func (lim *Limiter) SetRate(rate int) {
	lim.rate = rate
	if rate <= 0 {
		lim.Stop()
		lim.ticker = nil
		return
	}

	period := time.Second / time.Duration(rate)
	if lim.ticker == nil {
		lim.ticker = time.NewTicker(period)
	} else {
		lim.ticker.Reset(period)
	}
}

// Rate returns the number of triggers per second.
func (lim *Limiter) Rate() int {
	return lim.rate
}

// Wait blocks until the next trigger or until the context is cancelled.
func (lim *Limiter) Wait(ctx context.Context) error {
	if lim.ticker == nil {
		return ctx.Err()
	}
	select {
	case <-lim.ticker.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stop the Limiter. Wait() returns immediately after a call to Stop().
func (lim *Limiter) Stop() {
	if lim.ticker != nil {
		lim.ticker.Stop()
		lim.ticker = nil
	}
}
