package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Manage your documents",
	Long:  `List uploaded documents and upload new ones for processing.`,
}

var docsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your documents and their processing status",
	RunE:  runDocsList,
}

var docsUploadCmd = &cobra.Command{
	Use:   "upload [path]",
	Short: "Upload a document for processing",
	Long: `Upload a file to the Contexta backend.

Processing happens server-side; the document becomes queryable once its
status reaches 'ready'. Check with 'contexta docs list'.`,
	Args: cobra.ExactArgs(1),
	RunE: runDocsUpload,
}

func init() {
	docsCmd.AddCommand(docsListCmd)
	docsCmd.AddCommand(docsUploadCmd)
	rootCmd.AddCommand(docsCmd)
}

func runDocsList(cmd *cobra.Command, _ []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	docs, err := documentService.Refresh(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to load documents: %w", err)
	}

	if len(docs) == 0 {
		cmd.Println("No documents found. Upload one with 'contexta docs upload'.")
		return nil
	}

	for _, doc := range docs {
		cmd.Printf("  %s  %-12s %s\n", doc.ID, doc.Status, doc.FileName)
	}
	cmd.Printf("\nTotal: %d documents\n", len(docs))
	return nil
}

func runDocsUpload(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	fileName := filepath.Base(path)
	if err := documentService.Upload(cmd.Context(), fileName, data); err != nil {
		return fmt.Errorf("upload failed: %w", err)
	}

	cmd.Printf("Uploaded %s. Processing; check status with 'contexta docs list'.\n", fileName)
	return nil
}
