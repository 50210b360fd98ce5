// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pdf

// NewSurfaceOn builds a Surface over any canvas so tests can record its calls.
var NewSurfaceOn = newSurface
