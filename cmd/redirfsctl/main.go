// Command redirfsctl edits a redirfs overlay manifest, dumps its entries,
// and can replay it in-process for a quick lookup without a live host
// attached.
package main

func main() {
	execute()
}
