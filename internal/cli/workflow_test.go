package cli

import (
	"fmt"
	"testing"

	"github.com/hamlet-ml/hamlet/internal/filesystem"
	"github.com/stretchr/testify/require"
)

// Full pipeline: split a labeled corpus, train on the training subsets,
// validate against the holdout, classify fresh text.
func TestWorkflow_SplitTrainValidateClassify(t *testing.T) {
	fs := filesystem.NewMockFileSystem()

	for i := 0; i < 10; i++ {
		fs.AddFile(fmt.Sprintf("/work/corpus/enron1/ham/h%02d.txt", i),
			[]byte("meeting meeting meeting free money"))
	}
	for i := 0; i < 10; i++ {
		fs.AddFile(fmt.Sprintf("/work/corpus/enron1/spam/s%02d.txt", i),
			[]byte("free free free free money money money meeting"))
	}
	fs.AddDir("/work/data/train/ham")
	fs.AddDir("/work/data/validate/ham")
	fs.AddDir("/work/data/train/spam")
	fs.AddDir("/work/data/validate/spam")

	out, err := runCommand(t, NewSplitCommand(fs),
		"/work/corpus", "--out", "/work/data", "--yes")
	require.NoError(t, err)
	require.Contains(t, out, "Moved 20 files")

	_, err = runCommand(t, NewTrainCommand(fs),
		"--data", "/work/data", "--out", "/work/out/models/model.json", "--progress=false")
	require.NoError(t, err)

	out, err = runCommand(t, NewValidateCommand(fs),
		"--data", "/work/data", "--model", "/work/out/models/model.json", "--quiet")
	require.NoError(t, err)
	require.Contains(t, out, "Spam Correctly Classified: 2/2 = 1.0000")
	require.Contains(t, out, "Ham Correctly Classified: 2/2 = 1.0000")

	out, err = runCommand(t, NewClassifyCommand(fs),
		"--model", "/work/out/models/model.json", "free", "money", "offer")
	require.NoError(t, err)
	require.Contains(t, out, "Spam probability:")
}
