package email

// Each template renders standalone HTML with inline styles, for clients that
// strip external stylesheets.

const welcomeTemplate = `
<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<style>
    body { font-family: Arial, sans-serif; color: #222; margin: 0; }
    .header { background: #1a4d8f; color: #fff; padding: 24px; text-align: center; }
    .content { padding: 24px; font-size: 16px; line-height: 1.6; }
    .feature { padding: 6px 0; }
    .footer { padding: 16px 24px; color: #777; font-size: 12px; }
</style>
</head>
<body>
    <div class="header">
        <h1>ACESSA</h1>
        <p style="margin: 5px 0 0 0; opacity: 0.9;">Accessible Media Catalog</p>
    </div>
    <div class="content">
        <h2>Welcome, {{.UserName}}!</h2>
        <p>Thank you for joining ACESSA, the catalog built for accessible watching.</p>
        <p>With your account you can:</p>
        <div class="feature">Search titles by voice or text</div>
        <div class="feature">Filter by audio description, captions, and sign language</div>
        <div class="feature">Read descriptions in braille, Grade 1 or Grade 2</div>
        <div class="feature">Save favorites and rate what you watched</div>
        <p><a href="{{.BaseURL}}">Start exploring</a></p>
    </div>
    <div class="footer">
        <p>&copy; 2025 ACESSA. All rights reserved.</p>
    </div>
</body>
</html>
`

const passwordResetTemplate = `
<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<style>
    body { font-family: Arial, sans-serif; color: #222; margin: 0; }
    .header { background: #1a4d8f; color: #fff; padding: 24px; text-align: center; }
    .content { padding: 24px; font-size: 16px; line-height: 1.6; }
    .button { display: inline-block; background: #1a4d8f; color: #fff; padding: 12px 24px;
              text-decoration: none; border-radius: 4px; }
    .footer { padding: 16px 24px; color: #777; font-size: 12px; }
</style>
</head>
<body>
    <div class="header">
        <h1>ACESSA</h1>
        <p style="margin: 5px 0 0 0; opacity: 0.9;">Accessible Media Catalog</p>
    </div>
    <div class="content">
        <h2>Password Reset</h2>
        <p>Hello {{.UserName}},</p>
        <p>We received a request to reset your password. Click the button below to choose a new one.</p>
        <p><a class="button" href="{{.ResetURL}}">Reset password</a></p>
        <p>If you did not request this, you can safely ignore this email. The link expires in one hour.</p>
    </div>
    <div class="footer">
        <p>&copy; 2025 ACESSA. All rights reserved.</p>
    </div>
</body>
</html>
`

const newContentTemplate = `
<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<style>
    body { font-family: Arial, sans-serif; color: #222; margin: 0; }
    .header { background: #1a4d8f; color: #fff; padding: 24px; text-align: center; }
    .content { padding: 24px; font-size: 16px; line-height: 1.6; }
    .feature { display: inline-block; background: #eef3fa; color: #1a4d8f; padding: 4px 10px;
               margin: 2px; border-radius: 10px; font-size: 13px; }
    .footer { padding: 16px 24px; color: #777; font-size: 12px; }
</style>
</head>
<body>
    <div class="header">
        <h1>ACESSA</h1>
        <p style="margin: 5px 0 0 0; opacity: 0.9;">Accessible Media Catalog</p>
    </div>
    <div class="content">
        <h2>{{.Title}}</h2>
        <p>Hello {{.UserName}}, a new title matching your accessibility preferences just arrived.</p>
        <p>{{.Overview}}</p>
        <p>
        {{range .Features}}<span class="feature">{{.}}</span>{{end}}
        </p>
        <p><a href="{{.WatchURL}}">Watch now</a></p>
    </div>
    <div class="footer">
        <p>&copy; 2025 ACESSA. All rights reserved.</p>
    </div>
</body>
</html>
`
