/*
 * doc.go, part of gocsa.
 *
 * Copyright 2026 The gocsa authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

/*Package ckpt implements checkpoint files, used to keep the intermediate results
of an analysis (masks, residue charges) between runs, or for inspection.

A checkpoint file is compressed text. It starts with a header of key=value lines,
ended by a line with "**", one or more spaces, and the number of records in the
file. Then come the records, one per line. What a record contains is up to the
caller. The "**" sequence can only start the header termination line.

The compression depends on the extension of the file name: ".gz" is gzip, ".flate"
is raw deflate, ".lzw" is LZW (MSB, 8 bits) and anything else, by convention ".zst",
is Z-standard. The compression level is not configurable: the best available
is always used, checkpoint files are small.
*/
package ckpt
