package main

// Version is the version of jobspec
var Version = "0.1.0"
