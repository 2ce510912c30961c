package views

const appCSS = `
:root {
  --bg: #f4f6fb;
  --fg: #1c2333;
  --muted: #5b6478;
  --card-bg: rgba(255, 255, 255, 0.75);
  --card-border: rgba(28, 35, 51, 0.08);
  --accent: #3b5bdb;
  --accent-fg: #ffffff;
  --ok: #2f9e44;
  --warn: #e8860c;
  --error-bg: #fdecea;
  --error-fg: #b02a37;
  --success-bg: #e8f6ec;
  --success-fg: #2f9e44;
}
[data-theme="dark"] {
  --bg: #12151f;
  --fg: #e8eaf2;
  --muted: #9aa3b8;
  --card-bg: rgba(30, 36, 54, 0.75);
  --card-border: rgba(232, 234, 242, 0.1);
  --accent: #5c7cfa;
}
* { box-sizing: border-box; }
body {
  margin: 0;
  font-family: "Inter", system-ui, sans-serif;
  background: var(--bg);
  color: var(--fg);
}
.container { max-width: 72rem; margin: 0 auto; padding: 0 1rem; }
.page-main { min-height: 70vh; padding: 2rem 0 4rem; }
.navbar { position: sticky; top: 0; z-index: 10; backdrop-filter: blur(8px); background: var(--card-bg); border-bottom: 1px solid var(--card-border); }
.navbar-inner { display: flex; align-items: center; justify-content: space-between; padding: 0.75rem 1rem; }
.brand { font-weight: 700; font-size: 1.25rem; color: var(--fg); text-decoration: none; }
.nav-links { display: flex; align-items: center; gap: 1rem; }
.nav-links a { color: var(--fg); text-decoration: none; }
.inline-form { display: inline; margin: 0; }
.btn { border: none; border-radius: 0.375rem; padding: 0.4rem 0.9rem; font: inherit; cursor: pointer; text-decoration: none; }
.btn-primary { background: var(--accent); color: var(--accent-fg); }
.btn-outline { background: transparent; color: var(--fg); border: 1px solid var(--card-border); }
.btn-ghost { background: transparent; color: var(--muted); }
.glass-card { background: var(--card-bg); border: 1px solid var(--card-border); border-radius: 0.75rem; padding: 1.5rem; box-shadow: 0 10px 30px rgba(0, 0, 0, 0.06); }
.hero { text-align: center; padding: 4rem 1rem 3rem; }
.hero h1 { font-size: 2.75rem; margin: 0 0 1rem; }
.hero p { color: var(--muted); max-width: 40rem; margin: 0 auto 2rem; }
.member-grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(16rem, 1fr)); gap: 1.5rem; }
.member-card { text-align: center; }
.member-card .avatar { width: 5rem; height: 5rem; border-radius: 50%; background: var(--accent); color: var(--accent-fg); display: flex; align-items: center; justify-content: center; font-size: 1.5rem; font-weight: 600; margin: 1rem auto; }
.member-card .badge { display: inline-block; border: 1px solid var(--card-border); border-radius: 999px; padding: 0.1rem 0.75rem; font-size: 0.8rem; color: var(--muted); }
.member-card p { color: var(--muted); font-size: 0.9rem; }
.section-title { text-align: center; margin: 3rem 0 2rem; }
.quote { text-align: center; font-style: italic; font-size: 1.25rem; margin: 3rem auto; max-width: 48rem; }
.quote footer { font-style: normal; color: var(--muted); margin-top: 1rem; }
.reveal { opacity: 0; transform: translateY(1rem); transition: opacity 0.6s ease, transform 0.6s ease; }
.reveal.is-visible { opacity: 1; transform: none; }
.stats-grid { display: grid; grid-template-columns: repeat(auto-fit, minmax(15rem, 1fr)); gap: 1.5rem; margin-bottom: 2rem; }
.stat-value { font-size: 2rem; font-weight: 700; }
.stat-label { color: var(--muted); font-size: 0.9rem; }
.stat-ok { color: var(--ok); }
.stat-warn { color: var(--warn); }
.progress-track { height: 0.5rem; border-radius: 999px; background: var(--card-border); overflow: hidden; margin: 0.75rem 0 0.5rem; }
.progress-fill { height: 100%; background: var(--accent); }
.history-head { display: flex; flex-wrap: wrap; align-items: center; justify-content: space-between; gap: 1rem; margin-bottom: 1rem; }
.search-form input { padding: 0.4rem 0.75rem; border: 1px solid var(--card-border); border-radius: 0.375rem; background: transparent; color: var(--fg); }
.tx-table { width: 100%; border-collapse: collapse; }
.tx-table th, .tx-table td { text-align: left; padding: 0.6rem 0.75rem; border-bottom: 1px solid var(--card-border); }
.tx-table th { color: var(--muted); font-weight: 500; font-size: 0.85rem; }
.tx-table .amount { text-align: right; }
.tx-table .empty { text-align: center; color: var(--muted); padding: 2rem; }
.form-grid { display: grid; gap: 0.75rem; margin-top: 1rem; max-width: 24rem; }
.form-grid label { font-size: 0.9rem; font-weight: 500; }
.form-grid input, .form-grid select { padding: 0.45rem 0.75rem; border: 1px solid var(--card-border); border-radius: 0.375rem; background: transparent; color: var(--fg); font: inherit; }
.login-wrap { max-width: 24rem; margin: 4rem auto; }
.notice { display: flex; justify-content: space-between; align-items: center; border-radius: 0.5rem; padding: 0.6rem 1rem; margin-bottom: 1.5rem; }
.notice-error { background: var(--error-bg); color: var(--error-fg); }
.notice-success { background: var(--success-bg); color: var(--success-fg); }
.notice-dismiss { color: inherit; font-size: 0.85rem; }
.export-links { display: flex; gap: 0.75rem; font-size: 0.9rem; }
.site-footer { border-top: 1px solid var(--card-border); padding: 3rem 0 1rem; color: var(--muted); }
.footer-grid { display: grid; grid-template-columns: 2fr 1fr 1fr; gap: 2rem; }
.footer-grid h3, .footer-grid h4 { color: var(--fg); margin-top: 0; }
.footer-grid ul { list-style: none; margin: 0; padding: 0; }
.footer-grid li { margin-bottom: 0.4rem; }
.footer-grid a { color: var(--muted); }
.footer-bottom { text-align: center; margin-top: 2rem; font-size: 0.85rem; }
details.panel summary { cursor: pointer; }
@media (max-width: 48rem) {
  .footer-grid { grid-template-columns: 1fr; }
  .hero h1 { font-size: 2rem; }
}
`
