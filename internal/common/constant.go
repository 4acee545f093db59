package common

// JSONIndent is the indentation unit for every JSON document vidkeeper
// writes: the catalog file and the `view` command output.
const JSONIndent = "  "
