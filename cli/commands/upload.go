package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/petal-labs/herald/core"
)

func (a *App) newUploadCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "upload <file>",
		Short: "Upload an attachment for MMS/RCS sends",
		Long: `Upload a local file to the provider and print its file ID.

The returned file ID can be passed to 'herald send --file-id'.

Examples:
  herald upload picture.jpg
  herald upload contract.pdf --type DOCUMENT
  herald upload picture.jpg --json`,
		Args: cobra.ExactArgs(1),
		RunE: a.runUpload,
	}

	cmd.Flags().StringVar(&a.uploadType, "type", "MMS", "Upload purpose (MMS, RCS, DOCUMENT)")
	cmd.Flags().StringVar(&a.uploadLink, "link", "", "Landing URL to associate with the file")

	return cmd
}

func (a *App) runUpload(cmd *cobra.Command, args []string) error {
	path := args[0]

	content, err := os.ReadFile(path)
	if err != nil {
		return exitWithCode(ExitValidation, fmt.Errorf("failed to read %s: %w", path, err))
	}

	client, err := a.resolveClient()
	if err != nil {
		return exitWithCode(ExitValidation, err)
	}

	fileID, err := client.UploadFile(cmd.Context(), content, core.FileType(a.uploadType), a.uploadLink)
	if err != nil {
		return a.handleAPIError(err)
	}

	if a.jsonOutput {
		return a.outputJSON(core.FileUploadResult{FileID: fileID})
	}

	fmt.Fprintf(a.stdout, "Uploaded %s (%d bytes)\n", path, len(content))
	fmt.Fprintf(a.stdout, "File ID: %s\n", fileID)
	return nil
}
