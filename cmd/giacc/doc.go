// giacc-go: GIA asset Classic/Beyond Mode conversion tool
// Copyright (C) 2026  Da Spud Lord
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

/*
giacc converts GIA asset files between Classic Mode and Beyond Mode.

An editor locked to one mode refuses files authored in the other; giacc
flips the mode marker so the same asset can be opened either way. It
can also report which mode a file is currently in without touching it.

Usage:

	giacc to-classic <input> <output>
	giacc to-beyond <input> <output>
	giacc query <input>
	giacc help

The conversion commands write the converted file to <output>,
overwriting it without warning if it already exists. No changes are
made when the input file is already configured for the target mode.
Passing a single asterisk ("*") as <output> writes the converted file
back to the input file.
*/
package main
