/*
Package graphs provides a directed graph whose nodes live in an ordered collection and link to
each other by index, plus depth-first and breadth-first traversals over it.

Nodes are never removed, so an index handed out once stays valid. Every mutation that takes an
index checks it; connection lists passed in bulk are checked before they are installed.

# Traversals

[Graph.DepthFirstTraversal] yields in post-order from node 0 and [Graph.BreadthFirstTraversal]
yields in level order from node 0. Both are lazy, start from a fresh visited state on every range,
and skip nodes without data. For pull-style consumption use [Graph.DepthFirstIterator] and
[Graph.BreadthFirstIterator]; the breadth-first walk keeps its frontier in a
[queues.CircularQueue] sized to the node count.

# Logging

Link mutations are logged at debug level through a github.com/charmbracelet/log logger set with
[WithLogger]. Without one nothing is written.
*/
package graphs
