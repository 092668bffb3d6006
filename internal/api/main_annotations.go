// @title           promptdeck API
// @version         1.0
// @description     Single-user prompt assembly tool. Stores reusable text snippets and composes them into prompts.
// @BasePath        /api/v1
package api
