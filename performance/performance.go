// This file is part of rustyNES.
//
// rustyNES is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// rustyNES is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with rustyNES.  If not, see <https://www.gnu.org/licenses/>.

package performance

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/GaryFrazier/rustyNES/cartridgeloader"
	"github.com/GaryFrazier/rustyNES/curated"
	"github.com/GaryFrazier/rustyNES/debugger/govern"
	"github.com/GaryFrazier/rustyNES/hardware"
	"github.com/GaryFrazier/rustyNES/hardware/memory/cartridge"
	"github.com/GaryFrazier/rustyNES/hardware/preferences"
)

// sentinal error returned by Run() loop.
var timedOut = errors.New("performance timed out")

// the time given to the emulation to settle before measurement begins
const leadTime = 2 * time.Second

// Check the performance of the emulator using the supplied cartridge. The
// emulation runs for the specified duration, after a short lead time, and
// creates the profiles specified by the profile argument.
//
// The prefs argument can be nil.
func Check(output io.Writer, profile Profile, cl cartridgeloader.Loader, prefs *preferences.Preferences, dur time.Duration) error {
	if dur <= 0 {
		return curated.Errorf("performance: duration must be positive (%v)", dur)
	}

	nes, err := hardware.NewNES(prefs)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}
	nes.SetLogging(false)

	cart, err := cartridge.NewCartridge(&cl)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	err = nes.AttachCartridge(cart)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	startFrame := nes.PPU.Frame
	startCycles := nes.CPU.Cycles

	runner := func() error {
		// signals false when the lead time has elapsed and true when the
		// measurement period has finished
		timerChan := make(chan bool, 2)

		time.AfterFunc(leadTime, func() {
			timerChan <- false
			time.AfterFunc(dur, func() {
				timerChan <- true
			})
		})

		// checking the timerChan is relatively expensive so it is only
		// checked every PerformanceBrake instructions
		performanceBrake := 0

		err := nes.Run(func() (govern.State, error) {
			performanceBrake++
			if performanceBrake < hardware.PerformanceBrake {
				return govern.Running, nil
			}
			performanceBrake = 0

			select {
			case v := <-timerChan:
				if v {
					return govern.Ending, timedOut
				}
				startFrame = nes.PPU.Frame
				startCycles = nes.CPU.Cycles
			default:
			}

			return govern.Running, nil
		})
		if errors.Is(err, timedOut) {
			return nil
		}
		return err
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	numFrames := nes.PPU.Frame - startFrame
	numCycles := nes.CPU.Cycles - startCycles

	fps, accuracy := CalcFPS(numFrames, dur.Seconds())
	mhz := CalcMHz(numCycles, dur.Seconds())

	fmt.Fprintf(output, "%.2f fps (%d frames in %.2f seconds) %.1f%%\n", fps, numFrames, dur.Seconds(), accuracy)
	fmt.Fprintf(output, "%.3f MHz (%d cycles) %.1f%%\n", mhz, numCycles, 100*mhz/CPUClockMHz)

	return nil
}
