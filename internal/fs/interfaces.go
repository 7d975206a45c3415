package fs

import (
	"bazil.org/fuse/fs"
)

// Node is any node of the view.
type Node interface {
	fs.Node
	fs.NodeSetattrer
}

// Directory is a directory node. Mutating operations fail with EROFS.
type Directory interface {
	Node
	fs.NodeStringLookuper
	fs.HandleReadDirAller
	fs.NodeMkdirer
	fs.NodeCreater
	fs.NodeRemover
	fs.NodeRenamer
}

// FileNode is a regular file node.
type FileNode interface {
	Node
	fs.NodeOpener
	fs.NodeGetxattrer
	fs.NodeListxattrer
}

// FileHandleInterface is an open file.
type FileHandleInterface interface {
	fs.Handle
	fs.HandleReader
	fs.HandleReadAller
	fs.HandleReleaser
}

var (
	_ Directory           = (*Dir)(nil)
	_ FileNode            = (*File)(nil)
	_ FileHandleInterface = (*FileHandle)(nil)
)
