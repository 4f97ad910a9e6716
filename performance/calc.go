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

// NTSC hardware timing.
const (
	FramesPerSecond = 60.0988
	CPUClockMHz     = 1.789773
)

// CalcFPS returns the number of frames per second and the accuracy as a
// percentage of the NTSC frame rate.
func CalcFPS(numFrames int, duration float64) (fps float64, accuracy float64) {
	if duration <= 0 {
		return 0, 0
	}
	fps = float64(numFrames) / duration
	accuracy = 100 * fps / FramesPerSecond
	return fps, accuracy
}

// CalcMHz returns the effective CPU clock in megahertz.
func CalcMHz(numCycles uint64, duration float64) float64 {
	if duration <= 0 {
		return 0
	}
	return float64(numCycles) / duration / 1000000
}
