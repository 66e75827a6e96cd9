// Package hcl provides the HCL implementation of config.Loader.
//
// A settings file has up to five optional blocks:
//
//	frame  { width = 640  height = 360  fps = 60  frames = 0 }
//	script { path = "./main.turtle"  reload_every = 120  indent = "\t" }
//	turtle { start = [frame.width / 2, frame.height / 2]  indicator_size = 8 }
//	render { output = "text"  bounds = true  start_marker = 3 }
//	log    { level = "debug"  format = "json" }
//
// The frame block is decoded first and must hold literal values. Every other
// block is evaluated with frame.width and frame.height in scope, along with
// the min, max, floor, ceil and abs functions.
package hcl
