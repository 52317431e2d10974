package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"persondir/models"
)

func TestListPosts(t *testing.T) {
	is, ts := setupTest(t)

	resp, body := doRequest(is, ts, "GET", "/posts", nil)
	is.Equal(resp.StatusCode, http.StatusOK)

	var posts []models.Post
	is.NoErr(json.Unmarshal(body, &posts))
	is.Equal(len(posts), 3)
	is.Equal(posts[0].Text, "Hello how are you?")
	is.Equal(posts[0].Author.Name, "Judy")
}

func TestGetPost(t *testing.T) {
	is, ts := setupTest(t)

	resp, body := doRequest(is, ts, "GET", "/posts/1", nil)
	is.Equal(resp.StatusCode, http.StatusOK)

	var post models.Post
	is.NoErr(json.Unmarshal(body, &post))
	is.Equal(post.ID, 1)
	is.Equal(post.Text, "Im fine")
	is.Equal(post.Author.Name, "Jeremy")
}

func TestGetPostNotFound(t *testing.T) {
	is, ts := setupTest(t)

	resp, _ := doRequest(is, ts, "GET", "/posts/99", nil)
	is.Equal(resp.StatusCode, http.StatusNotFound)
}

func TestGetPostRejectsBadID(t *testing.T) {
	is, ts := setupTest(t)

	resp, _ := doRequest(is, ts, "GET", "/posts/abc", nil)
	is.Equal(resp.StatusCode, http.StatusBadRequest)
}

func TestCreatePost(t *testing.T) {
	is, ts := setupTest(t)

	resp, body := doRequest(is, ts, "POST", "/posts", bytes.NewBufferString(`{"author_name":"Jack","text":"hi"}`))
	is.Equal(resp.StatusCode, http.StatusCreated)

	var created models.Post
	is.NoErr(json.Unmarshal(body, &created))
	is.Equal(created.ID, 3) // seed holds posts 0..2
	is.Equal(created.Text, "hi")
	is.Equal(created.Author.Name, "Jack")
}

func TestCreatePostAuthorNotFound(t *testing.T) {
	is, ts := setupTest(t)

	resp, _ := doRequest(is, ts, "POST", "/posts", bytes.NewBufferString(`{"author_name":"Unknown","text":"hi"}`))
	is.Equal(resp.StatusCode, http.StatusNotFound)

	// nothing was appended
	resp, body := doRequest(is, ts, "GET", "/posts", nil)
	is.Equal(resp.StatusCode, http.StatusOK)
	var posts []models.Post
	is.NoErr(json.Unmarshal(body, &posts))
	is.Equal(len(posts), 3)
}

func TestCreatePostValidation(t *testing.T) {
	is, ts := setupTest(t)

	resp, _ := doRequest(is, ts, "POST", "/posts", bytes.NewBufferString(`{"author_name":"Jack"}`))
	is.Equal(resp.StatusCode, http.StatusBadRequest) // text missing

	resp, _ = doRequest(is, ts, "POST", "/posts", bytes.NewBufferString(`{"text":"hi"}`))
	is.Equal(resp.StatusCode, http.StatusBadRequest) // author_name missing
}
