package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/lendkeep/library-service/library/internal/model"
)

func newBooksCmd(baseURL *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "books",
		Short: "Manage and browse the book catalog",
	}
	cmd.AddCommand(
		newBooksAddCmd(baseURL),
		newBooksListCmd(baseURL),
		newBooksSearchCmd(baseURL),
		newBooksGetCmd(baseURL),
	)
	return cmd
}

func newBooksAddCmd(baseURL *string) *cobra.Command {
	var (
		title  string
		author string
		isbn   string
		copies int
	)
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a book to the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := newClient(*baseURL).addBook(cmd.Context(), model.AddBookRequest{
				Title:       title,
				Author:      author,
				ISBN:        isbn,
				TotalCopies: copies,
			})
			if err != nil {
				return err
			}
			fmt.Println(res.Message)
			return nil
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "book title")
	cmd.Flags().StringVar(&author, "author", "", "book author")
	cmd.Flags().StringVar(&isbn, "isbn", "", "13 digit ISBN")
	cmd.Flags().IntVar(&copies, "copies", 1, "number of copies")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("author")
	_ = cmd.MarkFlagRequired("isbn")
	return cmd
}

func newBooksListCmd(baseURL *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the whole catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := newClient(*baseURL).listBooks(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(res)
		},
	}
}

func newBooksSearchCmd(baseURL *string) *cobra.Command {
	var by string
	cmd := &cobra.Command{
		Use:   "search <term>",
		Short: "Search the catalog by title, author or isbn",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := newClient(*baseURL).searchBooks(cmd.Context(), args[0], by)
			if err != nil {
				return err
			}
			return printJSON(res)
		},
	}
	cmd.Flags().StringVar(&by, "by", "title", "search field: title, author or isbn")
	return cmd
}

func newBooksGetCmd(baseURL *string) *cobra.Command {
	return &cobra.Command{
		Use:   "get <bookId>",
		Short: "Show a single book",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bookID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("bookId must be an integer: %q", args[0])
			}
			res, err := newClient(*baseURL).getBook(cmd.Context(), bookID)
			if err != nil {
				return err
			}
			return printJSON(res)
		},
	}
}
