package web

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"postboard/config"
	"postboard/db"
	"postboard/forms"
	"postboard/models"
	"postboard/paging"
)

func Index(c *gin.Context) {
	var posts []models.Post
	page, err := paging.Paginate(models.Posts(),
		config.PAGE_SIZE, paging.ParsePageNumber(c.Query("page")), &posts)
	if err != nil {
		serverError(c, err)
		return
	}
	render(c, http.StatusOK, "index.tmpl", gin.H{"Posts": posts, "Page": page})
}

func GroupPosts(c *gin.Context) {
	group, err := models.GroupBySlug(c.Param("slug"))
	if err != nil {
		failRequest(c, err)
		return
	}
	var posts []models.Post
	page, err := paging.Paginate(models.Posts().Where("group_id = ?", group.ID),
		config.PAGE_SIZE, paging.ParsePageNumber(c.Query("page")), &posts)
	if err != nil {
		serverError(c, err)
		return
	}
	render(c, http.StatusOK, "group_list.tmpl", gin.H{"Group": group, "Posts": posts, "Page": page})
}

func Profile(c *gin.Context) {
	author, err := models.UserByUsername(c.Param("username"))
	if err != nil {
		failRequest(c, err)
		return
	}
	var posts []models.Post
	page, err := paging.Paginate(models.Posts().Where("author_id = ?", author.ID),
		config.PAGE_SIZE, paging.ParsePageNumber(c.Query("page")), &posts)
	if err != nil {
		serverError(c, err)
		return
	}
	render(c, http.StatusOK, "profile.tmpl", gin.H{"Author": author, "Posts": posts, "Page": page})
}

func PostDetail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("post_id"), 10, 64)
	if err != nil {
		notFound(c)
		return
	}
	post, err := models.PostByID(id)
	if err != nil {
		failRequest(c, err)
		return
	}
	render(c, http.StatusOK, "post_detail.tmpl", gin.H{"Post": post})
}

// PostCreate renders the empty form on GET and persists a new post on
// POST. The author is always the logged-in user; an invalid submission
// re-renders the form with field errors and persists nothing.
func PostCreate(c *gin.Context, user *models.User) {
	groups, err := models.Groups()
	if err != nil {
		serverError(c, err)
		return
	}
	if c.Request.Method == http.MethodGet {
		render(c, http.StatusOK, "create_post.tmpl",
			gin.H{"Form": forms.PostForm{}, "Errors": map[string]string{}, "Groups": groups, "IsEdit": false})
		return
	}
	form := forms.PostForm{}
	_ = form.Bind(c) // an unreadable body is the same as an empty form
	fieldErrors, err := form.Validate()
	if err != nil {
		serverError(c, err)
		return
	}
	if len(fieldErrors) > 0 {
		render(c, http.StatusOK, "create_post.tmpl",
			gin.H{"Form": form, "Errors": fieldErrors, "Groups": groups, "IsEdit": false})
		return
	}
	post := models.Post{AuthorID: user.ID}
	form.Apply(&post)
	if err := db.Instance.Create(&post).Error; err != nil {
		serverError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/profile/"+user.Username+"/")
}

// PostEdit lets the author change a post's text and group in place.
// Anyone else is redirected to the post detail page, with no error shown.
func PostEdit(c *gin.Context, user *models.User) {
	id, err := strconv.ParseUint(c.Param("post_id"), 10, 64)
	if err != nil {
		notFound(c)
		return
	}
	post, err := models.PostByID(id)
	if err != nil {
		failRequest(c, err)
		return
	}
	if post.AuthorID != user.ID {
		c.Redirect(http.StatusFound, postPath(post.ID))
		return
	}
	groups, err := models.Groups()
	if err != nil {
		serverError(c, err)
		return
	}
	if c.Request.Method == http.MethodGet {
		render(c, http.StatusOK, "create_post.tmpl",
			gin.H{"Form": forms.FromPost(&post), "Errors": map[string]string{}, "Groups": groups, "IsEdit": true, "Post": post})
		return
	}
	form := forms.PostForm{}
	_ = form.Bind(c)
	fieldErrors, err := form.Validate()
	if err != nil {
		serverError(c, err)
		return
	}
	if len(fieldErrors) > 0 {
		render(c, http.StatusOK, "create_post.tmpl",
			gin.H{"Form": form, "Errors": fieldErrors, "Groups": groups, "IsEdit": true, "Post": post})
		return
	}
	form.Apply(&post)
	// Update only the editable columns; the author is never rewritten.
	err = db.Instance.Model(&post).
		Select("text", "group_id").
		Updates(map[string]interface{}{"text": post.Text, "group_id": post.GroupID}).Error
	if err != nil {
		serverError(c, err)
		return
	}
	c.Redirect(http.StatusFound, postPath(post.ID))
}
