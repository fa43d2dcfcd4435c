// Package pixel implements load/store of 16 premultiplied RGBA8 pixels
// between interleaved memory and the pipeline's planar lane registers.
//
// Load8888, Load8888Tail and Store8888 are branch-free in their inner loops
// on purpose: these are the hottest functions in the pipeline, called once
// per lane group for every load_dst/store stage. Store8888Tail's loop stops
// with a branch once tail pixels have been written.
package pixel
