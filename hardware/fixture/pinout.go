// This file is part of drambench.
//
// drambench is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// drambench is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with drambench.  If not, see <https://www.gnu.org/licenses/>.

package fixture

import "github.com/hexbench/drambench/hardware/pins"

// ReferencePinout matches the wiring of the reference fixture board on a
// Raspberry Pi header. Boards wired differently should build their own
// Pinout value.
var ReferencePinout = Pinout{
	Address: []string{"GPIO2", "GPIO3", "GPIO4", "GPIO5", "GPIO6", "GPIO7"},
	Lines: map[pins.Line]string{
		pins.RowStrobe:    "GPIO8",
		pins.ColumnStrobe: "GPIO9",
		pins.WriteEnable:  "GPIO10",
		pins.ChipSelect:   "GPIO11",
		pins.DataIn:       "GPIO12",
		pins.DataOut:      "GPIO13",
	},
}
